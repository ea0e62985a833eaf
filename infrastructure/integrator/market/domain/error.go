package marketdomain

import (
	"fmt"
	"strings"
)

// ResponseError representa uma resposta rejeitada pela API do marketplace,
// seja por status HTTP ou por envelope diferente de OK
type ResponseError struct {
	Endpoint   string
	StatusCode int
	Status     string
	Errors     []APIError
	Body       string
}

func (e *ResponseError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "resposta inválida de %s", e.Endpoint)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (HTTP %d)", e.StatusCode)
	}
	if e.Status != "" {
		fmt.Fprintf(&b, " status=%s", e.Status)
	}
	for _, apiErr := range e.Errors {
		fmt.Fprintf(&b, " [%s: %s]", apiErr.Code, apiErr.Message)
	}
	if len(e.Errors) == 0 && e.Body != "" {
		fmt.Fprintf(&b, " corpo=%q", e.Body)
	}

	return b.String()
}
