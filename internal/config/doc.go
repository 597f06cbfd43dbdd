// Package config loads purge settings from an optional YAML file and the
// environment. Command-line flags are applied on top by the CLI.
//
// Example ospurge.yaml:
//
//	cloud: devstack-admin
//	project: demo
//	keep_project: false
//	output: text
//	log_format: text
//	pushgateway: http://pushgateway:9091
//	archive:
//	  bucket: s3://purge-reports/prod
//	  endpoint: https://rgw.example.com
//	  region: RegionOne
package config
