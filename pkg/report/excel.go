package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/propdesk/go-contractflow/pkg/payload"
	"github.com/propdesk/go-contractflow/pkg/session"
)

// Artifact names per transaction kind.
const (
	SaleArtifactName  = "Resumen_Operacion.xlsx"
	LeaseArtifactName = "Ficha_Arriendo.xlsx"
)

const sheetName = "Resumen"

// Excel generates the operation summary workbook: one row per string value
// of the payload plus a section listing the attached documents. The artifact
// name follows the request type tag carried by the payload.
type Excel struct{}

// NewExcel constructs the workbook generator.
func NewExcel() *Excel {
	return &Excel{}
}

// Generate implements Generator.
func (g *Excel) Generate(ctx context.Context, p *payload.Payload) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	if p == nil || p.Len() == 0 {
		return Artifact{}, fmt.Errorf("report: payload is empty")
	}

	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), sheetName); err != nil {
		return Artifact{}, fmt.Errorf("report: name sheet: %w", err)
	}
	if err := file.SetColWidth(sheetName, "A", "A", 32); err != nil {
		return Artifact{}, fmt.Errorf("report: set column width: %w", err)
	}
	if err := file.SetColWidth(sheetName, "B", "B", 60); err != nil {
		return Artifact{}, fmt.Errorf("report: set column width: %w", err)
	}

	headerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return Artifact{}, fmt.Errorf("report: header style: %w", err)
	}

	row := 1
	if err := g.writeRow(file, row, "Campo", "Valor"); err != nil {
		return Artifact{}, err
	}
	if err := file.SetCellStyle(sheetName, "A1", "B1", headerStyle); err != nil {
		return Artifact{}, fmt.Errorf("report: style header: %w", err)
	}

	var attachments []string
	for _, key := range p.Keys() {
		if part, ok := p.File(key); ok {
			attachments = append(attachments, fmt.Sprintf("%s (%s, %d bytes)", key, part.Filename, len(part.Content)))
			continue
		}
		value, _ := p.Value(key)
		row++
		if err := g.writeRow(file, row, key, value); err != nil {
			return Artifact{}, err
		}
	}

	if len(attachments) > 0 {
		row += 2
		if err := g.writeRow(file, row, "Documentos Adjuntos", ""); err != nil {
			return Artifact{}, err
		}
		for _, line := range attachments {
			row++
			if err := g.writeRow(file, row, "", line); err != nil {
				return Artifact{}, err
			}
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return Artifact{}, fmt.Errorf("report: write workbook: %w", err)
	}

	return Artifact{Name: artifactName(p), Content: buffer.Bytes()}, nil
}

func (g *Excel) writeRow(file *excelize.File, row int, key, value string) error {
	if err := file.SetCellValue(sheetName, fmt.Sprintf("A%d", row), key); err != nil {
		return fmt.Errorf("report: write cell A%d: %w", row, err)
	}
	if err := file.SetCellValue(sheetName, fmt.Sprintf("B%d", row), value); err != nil {
		return fmt.Errorf("report: write cell B%d: %w", row, err)
	}
	return nil
}

func artifactName(p *payload.Payload) string {
	if requestType, ok := p.Value(payload.KeyRequestType); ok && session.Kind(requestType) == session.KindLease {
		return LeaseArtifactName
	}
	return SaleArtifactName
}
