package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/splitbill/internal/validation"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	// Запрашиваем email
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	// Запрашиваем пароль
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	if err := c.session.Login(ctx, email, password); err != nil {
		return err
	}

	user := c.session.Identity()

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
	c.io.Println()
	c.io.Println("Your session has been saved.")

	return nil
}
