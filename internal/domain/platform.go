package domain

import (
	"fmt"
	"strings"
)

type Platform string

const (
	PlatformFacebook Platform = "Facebook"
	PlatformGoogle   Platform = "Google"
	PlatformTikTok   Platform = "TikTok"
)

// Platforms é a lista fechada de plataformas de anúncio suportadas, na ordem de exibição
var Platforms = []Platform{PlatformFacebook, PlatformGoogle, PlatformTikTok}

// PlatformColors segue a paleta usada nos gráficos do dashboard
var PlatformColors = map[Platform]string{
	PlatformFacebook: "1f77b4",
	PlatformGoogle:   "ff7f0e",
	PlatformTikTok:   "2ca02c",
}

func (p Platform) String() string {
	return string(p)
}

// ParsePlatform aceita o nome da plataforma sem diferenciar maiúsculas
func ParsePlatform(value string) (Platform, error) {
	for _, p := range Platforms {
		if strings.EqualFold(strings.TrimSpace(value), string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform: %q", value)
}

// ParsePlatforms converte uma lista separada por vírgula. Lista vazia significa todas as plataformas.
func ParsePlatforms(value string) ([]Platform, error) {
	if strings.TrimSpace(value) == "" {
		return append([]Platform(nil), Platforms...), nil
	}

	seen := make(map[Platform]bool)
	platforms := make([]Platform, 0, len(Platforms))
	for _, part := range strings.Split(value, ",") {
		p, err := ParsePlatform(part)
		if err != nil {
			return nil, err
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		platforms = append(platforms, p)
	}

	return platforms, nil
}
