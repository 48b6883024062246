package models

// Database holds connection settings for the Postgres store backing the
// pipeline.
type Database struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	Name            string `json:"name"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	SSLMode         string `json:"ssl_mode"`
	ApplicationName string `json:"application_name"`
	MaxConnections  int32  `json:"max_connections"`
	MinConnections  int32  `json:"min_connections"`
}
