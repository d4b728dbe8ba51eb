package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/srstalent/talentconnect/internal/client/register"
	"github.com/srstalent/talentconnect/internal/client/verify"
	"github.com/srstalent/talentconnect/internal/common"
)

// Login prompts for credentials, signs in, and installs the identity into
// the session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	pw, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	identity, err := a.service.SignIn(ctx, email, string(pw))
	if err != nil {
		fmt.Println("Sign-in failed:", err)
		return err
	}

	a.session.Set(identity)
	fmt.Println("Signed in as", identity.Email)
	return nil
}

// Logout signs out on the server and clears the local session. The local
// session is cleared even when the server call fails.
func (a *App) Logout(ctx context.Context) error {
	err := a.service.SignOut(ctx)
	a.session.Clear()
	if err != nil {
		fmt.Println("Sign-out reported an error:", err)
		return err
	}
	fmt.Println("Signed out")
	return nil
}

// WhoAmI prints the current session identity.
func (a *App) WhoAmI(context.Context) error {
	identity := a.session.Current()
	if identity == nil {
		fmt.Println("Not signed in")
		return nil
	}
	fmt.Printf("%s (%s)\n", identity.Email, identity.ID)
	return nil
}

// Register walks through the full registration flow: personal details,
// email and phone verification, terms acceptance, then account creation.
func (a *App) Register(ctx context.Context) error {
	flow := register.NewFlow(a.service, a.verifier)

	for {
		draft, err := a.collectDetails()
		if err != nil {
			return err
		}
		if err := flow.SubmitDetails(*draft); err != nil {
			fmt.Println("Please fix the following:", err)
			continue
		}
		break
	}

	d := flow.Draft()
	if err := a.runChallenge(ctx, flow.EmailChallenge(), "email", d.Email); err != nil {
		return err
	}
	if err := a.runChallenge(ctx, flow.PhoneChallenge(), "phone", d.ContactNumber); err != nil {
		return err
	}

	agreed, err := GetYesNo(a.reader, "Do you accept the terms and conditions?", os.Stdout)
	if err != nil {
		return err
	}
	flow.SetAgreeTerms(agreed)

	identity, err := flow.Submit(ctx)
	if err != nil {
		fmt.Println("Registration failed:", err)
		return err
	}

	fmt.Println("Account created for", identity.Email, "- you can now log in")
	return nil
}

func (a *App) collectDetails() (*register.Draft, error) {
	fullName, err := GetSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return nil, err
	}
	email, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return nil, err
	}
	phone, err := GetSimpleText(a.reader, "Contact number (10 digits)", os.Stdout)
	if err != nil {
		return nil, err
	}
	pw, err := GetPassword(os.Stdout)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(pw)

	return &register.Draft{
		FullName:      fullName,
		Email:         email,
		Password:      string(pw),
		ContactNumber: phone,
	}, nil
}

// runChallenge drives one verification challenge to completion: send the
// code, then prompt until the entered code verifies. "resend" re-sends once
// the cooldown allows it.
func (a *App) runChallenge(ctx context.Context, c *verify.Challenge, label, target string) error {
	if err := c.Request(ctx, target); err != nil {
		fmt.Println("Could not send", label, "verification code:", err)
		return err
	}
	fmt.Printf("A 6-digit code was sent to your %s (%s)\n", label, target)

	for !c.Verified() {
		code, err := GetSimpleText(a.reader, "Enter code (or 'resend')", os.Stdout)
		if err != nil {
			return err
		}
		if code == "resend" {
			switch err := c.Resend(ctx); {
			case errors.Is(err, verify.ErrResendNotReady):
				fmt.Printf("Resend available in %d seconds\n", int(c.ResendIn().Seconds())+1)
			case err != nil:
				fmt.Println("Resend failed:", err)
			default:
				fmt.Println("Code re-sent")
			}
			continue
		}
		if err := c.Submit(ctx, code); err != nil {
			fmt.Println("Verification failed:", err)
		}
	}

	fmt.Println("Verified", label, target)
	return nil
}
