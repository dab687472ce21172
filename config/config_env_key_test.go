package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"uri":      "",
			"database": "registrar",
		},
		"cors": map[string]any{
			"allowOrigins":     []any{},
			"allowCredentials": false,
		},
		"auth": map[string]any{
			"bcryptCost": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_URI", want: "mongo.uri"},
		{envKey: "MONGO_DATABASE", want: "mongo.database"},
		{envKey: "CORS_ALLOWORIGINS", want: "cors.allowOrigins"},
		{envKey: "CORS_ALLOWCREDENTIALS", want: "cors.allowCredentials"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
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
