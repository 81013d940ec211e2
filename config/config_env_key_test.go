package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"api": map[string]any{
			"baseUrl": "http://localhost:8080/api",
			"defaultPageSize": 10,
		},
		"credentials": map[string]any{
			"path": "",
		},
		"env": map[string]any{
			"serviceName": "vetadmin",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "API_DEFAULTPAGESIZE", want: "api.defaultPageSize"},
		{envKey: "CREDENTIALS_PATH", want: "credentials.path"},
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
