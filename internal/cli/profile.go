package cli

import (
	"context"
	"fmt"
)

// Whoami prints the stored identity, falling back to the guest defaults.
func (a *App) Whoami(ctx context.Context) error {
	fmt.Fprintf(a.out, "Name:  %s\n", a.profile.Name(ctx))
	fmt.Fprintf(a.out, "Email: %s\n", a.profile.Email(ctx))
	if a.profile.IsLoggedIn(ctx) {
		fmt.Fprintln(a.out, "Status: logged in")
	} else {
		fmt.Fprintln(a.out, "Status: not logged in")
	}
	return nil
}

// Theme toggles the dark-mode preference and reports the new value.
func (a *App) Theme(ctx context.Context) error {
	on, err := a.profile.ToggleDarkMode(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to toggle dark mode", "error", err)
		return err
	}
	if on {
		fmt.Fprintln(a.out, "Dark mode on")
	} else {
		fmt.Fprintln(a.out, "Dark mode off")
	}
	return nil
}
