package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// Alfabeto sem caracteres ambíguos para IDs legíveis em URL.
const idAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz0123456789"

const idLength = 10

// GenerateID gera um identificador público com o prefixo do agregado,
// no formato "calc_x7Kp2mQ9rT".
func GenerateID(prefix string) (string, error) {
	id, err := gonanoid.Generate(idAlphabet, idLength)
	if err != nil {
		return "", err
	}
	return prefix + "_" + id, nil
}
