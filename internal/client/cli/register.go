package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/splitbill/internal/validation"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Register ===")
	c.io.Println()

	// Запрашиваем имя
	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if err := validation.ValidateName(name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	// Запрашиваем email
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	// Запрашиваем пароль с подтверждением
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	c.io.Println()
	c.io.Println("Registering...")

	if err := c.session.Register(ctx, name, email, password); err != nil {
		return err
	}

	user := c.session.Identity()

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("Logged in as %s <%s>\n", user.Name, user.Email)

	return nil
}
