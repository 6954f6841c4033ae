package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/hbridge/careconnect-cli/internal/forms"
	"github.com/hbridge/careconnect-cli/internal/routing"
	"github.com/hbridge/careconnect-cli/internal/validation"
)

// fieldLabels maps form field names to prompt labels.
var fieldLabels = map[string]string{
	"email":           "Email",
	"password":        "Password",
	"confirmPassword": "Confirm password",
	"first_name":      "First name",
	"last_name":       "Last name",
	"phone":           "Phone number",
	"date_of_birth":   "Date of birth (YYYY-MM-DD)",
	"postcode":        "Postcode",
	"business_name":   "Business name",
	"cqc_number":      "CQC registration number",
}

func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

// RegisterWorker drives the three-step care worker sign-up wizard. The
// backend receives only credentials; the profile fields are parked locally
// for the complete-profile screen.
func (a *App) RegisterWorker(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in. Use 'logout' first.")
		return nil
	}
	return a.runRegistration(ctx, forms.NewWizard(forms.WorkerSteps()), "worker", forms.WorkerProfileFields())
}

// RegisterCareHome drives the single-page care home sign-up.
func (a *App) RegisterCareHome(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in. Use 'logout' first.")
		return nil
	}
	return a.runRegistration(ctx, forms.NewWizard(forms.CareHomeSteps()), "care_home", forms.CareHomeProfileFields())
}

func (a *App) runRegistration(ctx context.Context, wiz *forms.Wizard, userType string, profileFields []string) error {
	for wiz.Phase() != forms.PhaseSucceeded {
		fields := wiz.CurrentFields()

		switch {
		case len(fields) == 0:
			// Review step.
			a.printReview(wiz)
			answer, err := GetSimpleText(a.reader, "Submit? (yes/back/cancel)", a.out)
			if err != nil {
				wiz.Abandon()
				return err
			}
			switch answer {
			case "back":
				wiz.Back()
				continue
			case "cancel":
				wiz.Abandon()
				fmt.Fprintln(a.out, "Registration cancelled.")
				return nil
			case "yes":
			default:
				continue
			}

		case wiz.Step() < wiz.Steps():
			fmt.Fprintf(a.out, "Step %d of %d (%d%%)\n", wiz.Step(), wiz.Steps(), wiz.Progress())
			if err := a.fillFields(wiz, fields); err != nil {
				wiz.Abandon()
				return err
			}
			if !wiz.Next() {
				a.printFieldErrors(wiz, fields)
			}
			continue

		default:
			// Final step carries fields itself; submission follows directly.
			fmt.Fprintf(a.out, "Step %d of %d (%d%%)\n", wiz.Step(), wiz.Steps(), wiz.Progress())
			if err := a.fillFields(wiz, fields); err != nil {
				wiz.Abandon()
				return err
			}
		}

		ok := wiz.Submit(ctx, func(ctx context.Context) error {
			values := wiz.Form().Values()
			_, err := a.sessions.Register(ctx, values["email"], values["password"], userType)
			return err
		})
		if ok {
			continue
		}
		switch wiz.Phase() {
		case forms.PhaseFailed:
			fmt.Fprintf(a.out, "Registration failed: %s\n", wiz.SubmitError())
			answer, err := GetSimpleText(a.reader, "Retry? (yes/no)", a.out)
			if err != nil || answer != "yes" {
				wiz.Abandon()
				return nil
			}
		case forms.PhaseEditing:
			// Final-step validation rejected the submission.
			a.printFieldErrors(wiz, wiz.CurrentFields())
		}
	}

	values := wiz.Form().Values()
	profile := make(map[string]string, len(profileFields))
	for _, f := range profileFields {
		if v := values[f]; v != "" {
			profile[f] = v
		}
	}
	a.pending.Put(ctx, userType, profile)

	fmt.Fprintln(a.out, "Account created. Check your inbox for a verification email.")
	fmt.Fprintf(a.out, "Next: %s\n", routing.RouteVerifyEmail)
	return nil
}

// fillFields prompts for each field on the current step, pre-showing any
// existing value so Back does not lose work.
func (a *App) fillFields(wiz *forms.Wizard, fields []string) error {
	form := wiz.Form()
	for _, f := range fields {
		prompt := label(f)
		if current := form.Value(f); current != "" && f != "password" && f != "confirmPassword" {
			prompt = fmt.Sprintf("%s [%s]", prompt, current)
		}

		var value string
		var err error
		if f == "password" || f == "confirmPassword" {
			value, err = GetPassword(prompt, a.out)
		} else {
			value, err = GetSimpleText(a.reader, prompt, a.out)
		}
		if err != nil {
			return err
		}
		if value == "" && form.Value(f) != "" {
			// Keep the previous answer.
			form.Blur(f)
			continue
		}
		form.SetValue(f, value)
		form.Blur(f)

		if f == "password" {
			score := validation.PasswordStrength(value)
			fmt.Fprintf(a.out, "Strength: %s\n", validation.StrengthLabel(score))
			if hint := validation.WeakPasswordHint(value, form.Value("email")); hint != "" {
				fmt.Fprintln(a.out, "Hint:", hint)
			}
		}
		if msg := form.Error(f); msg != "" {
			fmt.Fprintf(a.out, "  %s\n", msg)
		}
	}
	return nil
}

func (a *App) printFieldErrors(wiz *forms.Wizard, fields []string) {
	for _, f := range fields {
		if msg := wiz.Form().Error(f); msg != "" {
			fmt.Fprintf(a.out, "%s: %s\n", label(f), msg)
		}
	}
}

func (a *App) printReview(wiz *forms.Wizard) {
	fmt.Fprintln(a.out, "Review your details:")
	values := wiz.Form().Values()
	names := make([]string, 0, len(values))
	for name := range values {
		if name == "password" || name == "confirmPassword" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(a.out, "  %-25s %s\n", label(name)+":", values[name])
	}
}
