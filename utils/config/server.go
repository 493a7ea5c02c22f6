package config

// ServerConfig holds configuration for the HTTP server
type ServerConfig struct {
	Port        int    `yaml:"port"`
	Enabled     bool   `yaml:"enabled"` // whether bearer auth is required
	BearerToken string `yaml:"bearerToken"`
	CORS        CORS   `yaml:"cors"`
}

// CORS holds Cross-Origin Resource Sharing settings
type CORS struct {
	Enabled        bool     `yaml:"enabled"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
	AllowedMethods []string `yaml:"allowedMethods"`
	AllowedHeaders []string `yaml:"allowedHeaders"`
	MaxAge         int      `yaml:"maxAge"`
}

// GetServerConfig returns the server configuration, filling in defaults
func (c *EnvConfig) GetServerConfig() *ServerConfig {
	server := c.Server
	if server == nil {
		server = &ServerConfig{}
	}
	if server.Port == 0 {
		server.Port = 8080
	}
	return server
}
