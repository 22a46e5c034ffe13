package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const defaultIDSize = 12

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, defaultIDSize)
}
