package log

import "fmt"

// msgAndFields splits the non-formatted arguments into a message and zap
// key/value pairs. A string first argument followed by an even number of
// values is treated as msg + pairs ("LLM generation successful", "provider", "groq").
// Anything else is concatenated like fmt.Sprint.
func msgAndFields(arg []any) (string, []any) {
	if len(arg) == 0 {
		return "", nil
	}
	msg, ok := arg[0].(string)
	rest := arg[1:]
	if !ok || len(rest)%2 != 0 || !keysAreStrings(rest) {
		return fmt.Sprint(arg...), nil
	}
	return msg, rest
}

func keysAreStrings(kv []any) bool {
	for i := 0; i < len(kv); i += 2 {
		if _, ok := kv[i].(string); !ok {
			return false
		}
	}
	return true
}
