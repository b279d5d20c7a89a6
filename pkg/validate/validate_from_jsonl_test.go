package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Gunvolt24/medcatalog/internal/domain"
)

func TestValidateJSONLStream_Mixed(t *testing.T) {
	input := strings.Join([]string{
		medicineJSON("a1", "Paracetamol", "30"),
		medicineJSON("a2", "Broken", "-3"),
		"   ",
		medicineJSON("a3", "Cetirizine", "18.5"),
	}, "\n")

	var out bytes.Buffer
	res, err := ValidateJSONLStream(context.Background(), NewMedicineValidator(), strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Valid != 2 || res.Invalid != 1 {
		t.Fatalf("unexpected counters: %+v", res)
	}
	if len(res.Errors) != 1 || res.Errors[0].Line != 2 {
		t.Fatalf("unexpected line errors: %+v", res.Errors)
	}
	if res.Summary() != "2 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", res.Summary())
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(lines))
	}
	var m1, m2 domain.Medicine
	if err := json.Unmarshal([]byte(lines[0]), &m1); err != nil {
		t.Fatalf("unmarshal line1: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &m2); err != nil {
		t.Fatalf("unmarshal line2: %v", err)
	}
	if m1.DocID != "a1" || m2.DocID != "a3" {
		t.Fatalf("unexpected output order: %s, %s", m1.DocID, m2.DocID)
	}
}

func TestValidateJSONLStream_LargeLine(t *testing.T) {
	big := strings.Repeat("X", 200_000) // > 64KB
	raw := `{"name":"Big","description":"` + big + `","price":1}`

	var out bytes.Buffer
	res, err := ValidateJSONLStream(context.Background(), NewMedicineValidator(), strings.NewReader(raw+"\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Valid != 1 || res.Invalid != 0 {
		t.Fatalf("unexpected counters: %+v", res)
	}
}

func TestValidateJSONLStream_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := ValidateJSONLStream(ctx, NewMedicineValidator(), strings.NewReader(medicineJSON("a1", "P", "1")+"\n"), &out)
	if err == nil {
		t.Fatalf("expected context error")
	}
	if out.Len() != 0 {
		t.Fatalf("nothing must be written after cancellation")
	}
}
