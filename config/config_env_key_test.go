package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"catalog": map[string]any{
			"maxDeliveryRadiusKm": 50,
		},
		"basket": map[string]any{
			"dynamodb": map[string]any{
				"table": "storefront-kv",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "CATALOG_MAXDELIVERYRADIUSKM", want: "catalog.maxDeliveryRadiusKm"},
		{envKey: "BASKET_DYNAMODB_TABLE", want: "basket.dynamodb.table"},
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

func TestApplyCatalogDefaults(t *testing.T) {
	cfg := &Config{}
	applyCatalogDefaults(cfg)

	if cfg.Catalog.Currency != defaultCurrency {
		t.Fatalf("currency = %q, want %q", cfg.Catalog.Currency, defaultCurrency)
	}
	if cfg.Catalog.MaxDeliveryRadiusKm != defaultMaxDeliveryRadius {
		t.Fatalf("max radius = %v, want %v", cfg.Catalog.MaxDeliveryRadiusKm, defaultMaxDeliveryRadius)
	}

	cfg.Catalog.MaxDeliveryRadiusKm = 12
	applyCatalogDefaults(cfg)
	if cfg.Catalog.MaxDeliveryRadiusKm != 12 {
		t.Fatalf("configured radius overwritten: %v", cfg.Catalog.MaxDeliveryRadiusKm)
	}
}
