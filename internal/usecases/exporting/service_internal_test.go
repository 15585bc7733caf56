package exporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/realize-report-api/internal/config"
)

func testConfigInternal(dir string) *config.Config {
	return &config.Config{Export: config.Export{Directory: dir}}
}

func TestSanitizeFilePart(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Conta Exemplo", "Conta_Exemplo"},
		{"Conta / Exemplo & Cia", "Conta_Exemplo_Cia"},
		{"___conta___", "conta"},
		{"conta-ok_123", "conta-ok_123"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilePart(tt.in))
	}
}

func TestBuildFileName(t *testing.T) {
	assert.Equal(t,
		"RealizeReport-Conta_Exemplo-campaign_breakdown-2024-01-01_to_2024-01-15.xlsx",
		buildFileName("Conta Exemplo", "campaign_breakdown", "2024-01-01", "2024-01-15"))

	// Exportação multiabas omite o breakdown do nome
	assert.Equal(t,
		"RealizeReport-Conta-2024-01-01_to_2024-01-15.xlsx",
		buildFileName("Conta", "", "2024-01-01", "2024-01-15"))

	assert.Equal(t, "RealizeReport-Conta.xlsx", buildFileName("Conta", "", "", ""))
}

func TestExportDir_FallsBackWhenMissing(t *testing.T) {
	service := NewService(nil, testConfigInternal("/caminho/que/nao/existe")).(*Service)

	dir := service.exportDir()

	assert.NotEqual(t, "/caminho/que/nao/existe", dir)
	assert.NotEmpty(t, dir)
}

func TestExportDir_UsesConfiguredDirectory(t *testing.T) {
	configured := t.TempDir()
	service := NewService(nil, testConfigInternal(configured)).(*Service)

	assert.Equal(t, configured, service.exportDir())
}
