package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"librarycatalog/internal/domain/models"
	"librarycatalog/internal/repository"
	"librarycatalog/internal/services/auth"
	"librarycatalog/internal/services/hasher"
	"librarycatalog/internal/services/token"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errPasswordMismatch = errors.New("passwords do not match")

type userAddFlags struct {
	login         string
	rights        string
	passwordStdin bool
}

func NewUserCmd(gf *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage catalog users",
	}
	cmd.AddCommand(newUserAddCmd(gf))
	return cmd
}

func newUserAddCmd(gf *globalFlags) *cobra.Command {
	f := &userAddFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user, admin rights can only be granted here",
		Long: `Create a catalog user directly in storage.

The password is read from the terminal twice, or from the first line of
standard input when --password-stdin is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUserAdd(cmd, gf, f)
		},
	}

	cmd.Flags().StringVar(&f.login, "login", "", "user login")
	cmd.Flags().StringVar(&f.rights, "rights", models.RightsUser, "user rights: user or admin")
	cmd.Flags().BoolVar(&f.passwordStdin, "password-stdin", false, "read password from stdin")
	_ = cmd.MarkFlagRequired("login")

	return cmd
}

func runUserAdd(cmd *cobra.Command, gf *globalFlags, f *userAddFlags) error {
	if f.rights != models.RightsUser && f.rights != models.RightsAdmin {
		return fmt.Errorf("%w: unknown rights %q", models.ErrInvalidInput, f.rights)
	}

	password, err := readPassword(cmd, f.passwordStdin)
	if err != nil {
		return err
	}

	cfg, err := gf.loadConfig(cmd)
	if err != nil {
		return err
	}

	storage, err := repository.Open(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer storage.Close()

	tokens, err := token.NewService(cfg.JWTSecretKey, cfg.JWTAccessExpire)
	if err != nil {
		return err
	}

	authService := auth.NewAuthentication(storage, hasher.NewBcryptHasher(cfg.BcryptCost), tokens)
	user, err := authService.Register(cmd.Context(), f.login, password, f.rights)
	if err != nil {
		return err
	}

	cmd.Printf("created user %q (id %d, rights %s)\n", user.Login, user.ID, user.Rights)
	return nil
}

func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	if fromStdin {
		return readPasswordLine(cmd.InOrStdin())
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal, use --password-stdin")
	}

	first, err := promptPassword(cmd, fd, "Password: ")
	if err != nil {
		return "", err
	}
	second, err := promptPassword(cmd, fd, "Repeat password: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errPasswordMismatch
	}
	return first, nil
}

func promptPassword(cmd *cobra.Command, fd int, prompt string) (string, error) {
	cmd.PrintErr(prompt)
	raw, err := term.ReadPassword(fd)
	cmd.PrintErrln()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// readPasswordLine берет первую строку, перевод строки не входит в пароль
func readPasswordLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
