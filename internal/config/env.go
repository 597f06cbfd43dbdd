package config

import "os"

// Environment variables consulted for unset fields.
//
//   - OS_CLOUD: clouds.yaml entry, the same variable the OpenStack CLI reads
//   - OSPURGE_S3_ENDPOINT: report archive endpoint
//   - OSPURGE_S3_REGION: report archive region
//   - OSPURGE_PUSHGATEWAY: Prometheus Pushgateway URL
const (
	EnvCloud       = "OS_CLOUD"
	EnvS3Endpoint  = "OSPURGE_S3_ENDPOINT"
	EnvS3Region    = "OSPURGE_S3_REGION"
	EnvPushgateway = "OSPURGE_PUSHGATEWAY"
)

// ApplyEnv fills empty fields from the environment.
func (c *PurgeConfig) ApplyEnv() {
	setFromEnv(&c.Cloud, EnvCloud)
	setFromEnv(&c.Pushgateway, EnvPushgateway)
	setFromEnv(&c.Archive.Endpoint, EnvS3Endpoint)
	setFromEnv(&c.Archive.Region, EnvS3Region)
}

func setFromEnv(field *string, envVar string) {
	if *field != "" {
		return
	}
	if val := os.Getenv(envVar); val != "" {
		*field = val
	}
}
