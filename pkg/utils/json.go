package utils

import (
	"bytes"
	"encoding/json"
)

// PrettyJson indenta o payload para logs de depuração. Entrada que não
// for JSON válido volta como string crua, nunca como erro.
func PrettyJson(in any) string {
	raw, ok := in.([]byte)
	if !ok {
		var err error
		raw, err = json.Marshal(in)
		if err != nil {
			return ""
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "\t"); err != nil {
		return string(raw)
	}

	return out.String()
}
