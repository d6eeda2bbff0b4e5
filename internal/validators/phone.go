package validators

import "unicode"

// PhoneOK aceita telefone vazio ou com 9 a 15 dígitos, ignorando espaços,
// "+", hífens e parênteses. Letras invalidam.
func PhoneOK(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == ' ' || r == '+' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return phone == "" || digits >= 9 && digits <= 15
}
