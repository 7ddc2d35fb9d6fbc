// Package hashing produces the run fingerprint: a sha256 over a
// canonical JSON form of (shape, config, total). Two runs with the same
// fingerprint produce byte-identical records.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/mmrzaf/fixgen/internal/domain"
)

func Fingerprint(shape *domain.Shape, cfg domain.Config, total int) (string, error) {
	canonical := map[string]interface{}{
		"shape":  canonicalShape(shape),
		"config": canonicalConfig(cfg),
		"total":  total,
	}
	data, err := json.Marshal(canonical)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func canonicalShape(shape *domain.Shape) map[string]interface{} {
	fields := make([]map[string]interface{}, len(shape.Fields))
	for i, f := range shape.Fields {
		fields[i] = map[string]interface{}{
			"name":     f.Name,
			"type":     string(f.Type),
			"nullable": f.Nullable,
		}
	}
	out := map[string]interface{}{
		"name":   shape.Name,
		"fields": fields,
	}
	if shape.Table != "" {
		out["table"] = shape.Table
	}
	return out
}

func canonicalConfig(cfg domain.Config) map[string]interface{} {
	return map[string]interface{}{
		"seed":            cfg.Seed,
		"locale":          cfg.Locale,
		"currency_symbol": cfg.CurrencySymbol,
	}
}
