package middleware

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DescribeBindingError renders a binding failure for logs, e.g.
// "Titre: required, Date: required". Clients get the handler's own message.
func DescribeBindingError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+": "+fe.Tag())
	}
	return strings.Join(parts, ", ")
}
