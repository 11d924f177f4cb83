package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anyulbade/billplz/internal/dto"
)

// ParseSplit reads a --split value of the form EMAIL:ORDER, optionally
// followed by :fixed=SEN or :variable=PERCENT.
func ParseSplit(raw string) (dto.SplitPaymentInput, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return dto.SplitPaymentInput{}, fmt.Errorf("split %q: want EMAIL:ORDER[:fixed=SEN|:variable=PERCENT]", raw)
	}

	email := strings.TrimSpace(parts[0])
	if email == "" {
		return dto.SplitPaymentInput{}, fmt.Errorf("split %q: missing email", raw)
	}

	order, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || order < 0 {
		return dto.SplitPaymentInput{}, fmt.Errorf("split %q: order must be a non-negative integer", raw)
	}

	sp := dto.SplitPaymentInput{Email: email, StackOrder: order}
	if len(parts) == 2 {
		return sp, nil
	}

	key, value, ok := strings.Cut(parts[2], "=")
	if !ok || value == "" {
		return dto.SplitPaymentInput{}, fmt.Errorf("split %q: cut must be fixed=SEN or variable=PERCENT", raw)
	}

	switch key {
	case "fixed":
		cut, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return dto.SplitPaymentInput{}, fmt.Errorf("split %q: fixed cut: %w", raw, err)
		}
		sp.FixedCut = &cut
	case "variable":
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return dto.SplitPaymentInput{}, fmt.Errorf("split %q: variable cut: %w", raw, err)
		}
		sp.VariableCut = &value
	default:
		return dto.SplitPaymentInput{}, fmt.Errorf("split %q: unknown cut %q", raw, key)
	}
	return sp, nil
}
