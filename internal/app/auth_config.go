package app

import iauth "github.com/skillradar/skillradar/internal/auth"

// JWTServiceConfig converts the settings into the auth package configuration.
func (a AuthConfig) JWTServiceConfig() iauth.JWTConfig {
	return iauth.JWTConfig{
		Secret:         a.JWT.Secret,
		Issuer:         a.JWT.Issuer,
		AccessTokenTTL: a.JWT.TTL,
	}
}
