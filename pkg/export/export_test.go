package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	exporter := NewCSVExporter()

	data, err := exporter.Render(Dataset{
		Headers: []string{"Name", "Email"},
		Rows: []map[string]string{
			{"Name": "Jane Doe", "Email": "jane@example.com"},
			{"Name": "Contains, comma", "Email": "comma@example.com"},
		},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Email", lines[0])
	assert.Equal(t, "Jane Doe,jane@example.com", lines[1])
	assert.Equal(t, `"Contains, comma",comma@example.com`, lines[2])
}

func TestCSVExporterRenderMissingCellsStayEmpty(t *testing.T) {
	exporter := NewCSVExporter()

	data, err := exporter.Render(Dataset{
		Headers: []string{"Name", "Email"},
		Rows:    []map[string]string{{"Name": "Jane Doe"}},
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), "Jane Doe,\n")
}

func TestCSVExporterRenderRequiresHeaders(t *testing.T) {
	exporter := NewCSVExporter()

	_, err := exporter.Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRenderReceipt(t *testing.T) {
	exporter := NewPDFExporter()

	data, err := exporter.RenderReceipt("Payment Receipt", []ReceiptLine{
		{Label: "Receipt No", Value: "pay-1"},
		{Label: "Amount", Value: "1200.00 USD"},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestPDFExporterRenderReceiptRequiresLines(t *testing.T) {
	exporter := NewPDFExporter()

	_, err := exporter.RenderReceipt("Payment Receipt", nil)
	assert.Error(t, err)
}
