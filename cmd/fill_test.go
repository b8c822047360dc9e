package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/efocats/efowizard/internal/config"
	"github.com/efocats/efowizard/internal/logging"
	"github.com/efocats/efowizard/internal/wizard"
)

func fullAnswers() map[wizard.Field]string {
	return map[wizard.Field]string{
		wizard.FieldName:  "山田",
		wizard.FieldEmail: "y@x.com",
		wizard.FieldArea:  "大阪",
		wizard.FieldPlan:  "プレミアム",
	}
}

func TestFillRecord_Complete(t *testing.T) {
	rec, err := fillRecord(fullAnswers(), wizard.Permissive, logging.Nop{})
	if err != nil {
		t.Fatalf("fillRecord error: %v", err)
	}
	want := wizard.FormData{Name: "山田", Email: "y@x.com", Area: "大阪", Plan: "プレミアム"}
	if rec != want {
		t.Errorf("record = %+v, want %+v", rec, want)
	}
}

func TestFillRecord_BlockedOnFirstStep(t *testing.T) {
	a := fullAnswers()
	a[wizard.FieldEmail] = "  "
	_, err := fillRecord(a, wizard.Permissive, logging.Nop{})

	var blocked *BlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("expected BlockedError, got %v", err)
	}
	if blocked.Step.ID != wizard.StepPersonal {
		t.Errorf("expected step 1, got %d", blocked.Step.ID)
	}
	if len(blocked.Missing) != 1 || blocked.Missing[0] != wizard.FieldEmail {
		t.Errorf("expected missing email, got %v", blocked.Missing)
	}
	if !strings.Contains(err.Error(), "missing email") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestFillRecord_BlockedOnLastStep(t *testing.T) {
	a := fullAnswers()
	delete(a, wizard.FieldPlan)
	_, err := fillRecord(a, wizard.Permissive, logging.Nop{})

	var blocked *BlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("expected BlockedError, got %v", err)
	}
	if blocked.Step.ID != wizard.StepPlan {
		t.Errorf("expected step 3, got %d", blocked.Step.ID)
	}
}

func TestFillRecord_StrictRejectsUnknownArea(t *testing.T) {
	a := fullAnswers()
	a[wizard.FieldArea] = "京都"

	if _, err := fillRecord(a, wizard.Permissive, logging.Nop{}); err != nil {
		t.Fatalf("permissive run failed: %v", err)
	}

	_, err := fillRecord(a, wizard.Strict, logging.Nop{})
	var blocked *BlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("expected BlockedError, got %v", err)
	}
	if blocked.Step.ID != wizard.StepArea || !strings.Contains(err.Error(), "not in catalog") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseSets(t *testing.T) {
	a := fullAnswers()
	if err := parseSets([]string{"area=福岡", "name=a=b"}, a); err != nil {
		t.Fatalf("parseSets error: %v", err)
	}
	if a[wizard.FieldArea] != "福岡" || a[wizard.FieldName] != "a=b" {
		t.Errorf("unexpected answers: %v", a)
	}

	if err := parseSets([]string{"phone=1"}, a); !errors.Is(err, wizard.ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
	if err := parseSets([]string{"plan"}, a); err == nil {
		t.Error("expected error for missing '='")
	}
}

func TestWriteDoc_Formats(t *testing.T) {
	rec := wizard.FormData{Name: "山田", Email: "y@x.com", Area: "大阪", Plan: "ベーシック"}

	var buf bytes.Buffer
	if err := writeDoc(&buf, "json", rec); err != nil {
		t.Fatalf("json: %v", err)
	}
	var fromJSON wizard.FormData
	if err := json.Unmarshal(buf.Bytes(), &fromJSON); err != nil || fromJSON != rec {
		t.Errorf("json output %q decoded to %+v (%v)", buf.String(), fromJSON, err)
	}

	buf.Reset()
	if err := writeDoc(&buf, "yaml", rec); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	var fromYAML wizard.FormData
	if err := yaml.Unmarshal(buf.Bytes(), &fromYAML); err != nil || fromYAML != rec {
		t.Errorf("yaml output %q decoded to %+v (%v)", buf.String(), fromYAML, err)
	}

	if err := writeDoc(&buf, "xml", rec); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestValidatorFor(t *testing.T) {
	d := wizard.FormData{Area: "京都"}
	if !validatorFor(&config.Config{}).Valid(wizard.StepArea, d) {
		t.Error("expected permissive validator by default")
	}
	if validatorFor(&config.Config{StrictOptions: true}).Valid(wizard.StepArea, d) {
		t.Error("expected strict validator")
	}
}

func TestCatalogCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"catalog", "--format", "json"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("catalog: %v", err)
	}

	var doc catalogDoc
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("decoding catalog: %v\n%s", err, out.String())
	}
	if len(doc.Steps) != 3 || len(doc.Areas) != 4 || len(doc.Plans) != 3 {
		t.Errorf("unexpected catalog: %+v", doc)
	}
	if doc.Steps[1].Label != "エリア選択" {
		t.Errorf("unexpected step 2 label %q", doc.Steps[1].Label)
	}
}
