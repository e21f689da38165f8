package generate

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/KornaPhp/random/pkg/random"
	"github.com/manifoldco/promptui"
)

// validatePositive is the promptui validator for numeric answers
func validatePositive(in string) error {
	v, err := strconv.Atoi(strings.TrimSpace(in))
	if err != nil {
		return fmt.Errorf("%q is not a number", in)
	}
	if v < 1 {
		return errTooSmall
	}
	return nil
}

func promptInt(label string, def int) (int, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  strconv.Itoa(def),
		Validate: validatePositive,
		Stdout:   os.Stderr,
	}
	v, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(v))
}

func promptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdout:    os.Stderr,
	}
	_, err := prompt.Run()
	if err == promptui.ErrAbort {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Interactive asks for the length, count and, for strings and passwords, the character classes of
// the batch. The answers are applied to o.
func Interactive(o *Options) error {
	length, err := promptInt("Length", o.Length)
	if err != nil {
		return fmt.Errorf("failed to read length: %w", err)
	}
	o.Length = length

	count, err := promptInt("How many values", o.Count)
	if err != nil {
		return fmt.Errorf("failed to read count: %w", err)
	}
	o.Count = count

	switch o.Kind {
	case KindString:
		classes := random.NoClasses
		for _, c := range []random.Class{random.Lower, random.Upper, random.Numbers, random.Symbols} {
			ok, err := promptConfirm("Include " + c.String())
			if err != nil {
				return fmt.Errorf("failed to read classes: %w", err)
			}
			if ok {
				classes |= c
			}
		}
		o.Classes = classes
		fallthrough
	case KindPassword:
		ok, err := promptConfirm("Require every character class")
		if err != nil {
			return fmt.Errorf("failed to read require all: %w", err)
		}
		o.RequireAll = ok
	}
	return nil
}
