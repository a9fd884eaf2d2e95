package pipeline

import (
	"context"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/openfnol/fnoltriage/internal/model"
)

const testNotice = `Policy Number: POL-77001
Policyholder Name: Alice Cooper
Date of Loss: 03/15/2024
Location of Loss: 42 Elm St, Dayton, OH
Description of accident: Rear-end collision at low speed, minor bumper damage.

Damage estimate: $2,400
Claim type: vehicle_damage
`

func newTestPipeline(t *testing.T, cfg *model.Config) *Pipeline {
	t.Helper()
	p, err := NewPipeline(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	return p
}

func TestProcess_EndToEnd(t *testing.T) {
	p := newTestPipeline(t, model.DefaultConfig())

	result, err := p.Process(context.Background(), model.Document{ID: "n-1", Text: testNotice})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if result.DocumentID != "n-1" {
		t.Errorf("DocumentID = %s, want n-1", result.DocumentID)
	}
	if result.Record.DocumentType != model.DocumentTypeGeneric {
		t.Errorf("document type = %s, want GENERIC", result.Record.DocumentType)
	}
	if !result.Validation.IsValid {
		t.Errorf("validation = %+v, want valid", result.Validation)
	}
	if result.Fraud.RiskTier != model.RiskTierLow {
		t.Errorf("risk tier = %s, want LOW", result.Fraud.RiskTier)
	}
	// Complete, low-risk, under the cap: fast-tracked.
	if result.Routing.DestinationQueue != "fast_track" {
		t.Errorf("queue = %s, want fast_track", result.Routing.DestinationQueue)
	}
	if result.Notes != nil {
		t.Error("notes generated with no LLM configured")
	}
}

// Identical text always yields the identical decision, whatever the
// document ID says.
func TestProcess_Deterministic(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	p := newTestPipeline(t, cfg)

	first, err := p.Process(context.Background(), model.Document{ID: "a", Text: testNotice})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	second, err := p.Process(context.Background(), model.Document{ID: "b", Text: testNotice})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if first.Routing.DestinationQueue != second.Routing.DestinationQueue ||
		first.Routing.MatchedRuleID != second.Routing.MatchedRuleID {
		t.Errorf("routing differs: %+v vs %+v", first.Routing, second.Routing)
	}
	if first.Fraud.Score != second.Fraud.Score {
		t.Errorf("fraud score differs: %v vs %v", first.Fraud.Score, second.Fraud.Score)
	}
	if !reflect.DeepEqual(first.Validation, second.Validation) {
		t.Errorf("validation differs: %+v vs %+v", first.Validation, second.Validation)
	}
}

// A cache hit keeps the caller's document ID, not the first caller's.
func TestProcess_CacheHitKeepsDocumentID(t *testing.T) {
	p := newTestPipeline(t, model.DefaultConfig())

	first, err := p.Process(context.Background(), model.Document{ID: "original", Text: testNotice})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	second, err := p.Process(context.Background(), model.Document{ID: "replay", Text: testNotice})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if first.DocumentID != "original" || second.DocumentID != "replay" {
		t.Errorf("document IDs = %s, %s; want original, replay", first.DocumentID, second.DocumentID)
	}
	if first.Routing.DestinationQueue != second.Routing.DestinationQueue {
		t.Error("cache hit changed the routing decision")
	}
}

func TestProcess_CancelledContext(t *testing.T) {
	p := newTestPipeline(t, model.DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Process(ctx, model.Document{ID: "c", Text: testNotice}); err == nil {
		t.Error("expected an error for a cancelled context")
	}
}

// A claim type stated in document casing must hit the same routing
// rules as its lowercase form: "Claim Type: Injury" is an injury
// claim, not a fast-track candidate.
func TestProcess_StatedInjuryRoutesToSpecialist(t *testing.T) {
	p := newTestPipeline(t, model.DefaultConfig())

	notice := `Policy Number: POL-55002
Policyholder Name: Brian May
Date of Loss: 04/02/2024
Location of Loss: 9 Oak Ave, Columbus, OH
Description of accident: Slip on wet stairs, claimant injured and taken to the emergency room.

Damage estimate: $1,200
Claim Type: Injury
`
	result, err := p.Process(context.Background(), model.Document{ID: "n-2", Text: notice})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if got := result.Record.Text(model.FieldClaimType); got != "injury" {
		t.Errorf("claim_type = %q, want the canonical injury", got)
	}
	if result.Routing.MatchedRuleID != "injury-claim" {
		t.Errorf("rule = %s, want injury-claim", result.Routing.MatchedRuleID)
	}
	if result.Routing.DestinationQueue != "specialist" {
		t.Errorf("queue = %s, want specialist despite the small amount", result.Routing.DestinationQueue)
	}
}

func TestProcess_ACORDRouting(t *testing.T) {
	p := newTestPipeline(t, model.DefaultConfig())

	form := `ACORD AUTOMOBILE LOSS NOTICE

SECTION 1: POLICY INFORMATION
POLICY NUMBER: AUTO-9
NAME OF INSURED: SAM GREEN

SECTION 3: LOSS DETAILS
DATE OF LOSS: 02/01/2024
LOCATION OF LOSS: MAIN ST
DESCRIPTION OF ACCIDENT: DRIVER INJURED IN COLLISION, TAKEN TO HOSPITAL
ESTIMATE AMOUNT: $3,000
`
	result, err := p.Process(context.Background(), model.Document{ID: "f-1", Text: form})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if result.Record.DocumentType != model.DocumentTypeACORD {
		t.Errorf("document type = %s, want ACORD_FORM", result.Record.DocumentType)
	}
	// Injury inference routes to the specialist queue ahead of
	// fast-track, despite the small amount.
	if got := result.Record.Text(model.FieldClaimType); got != "injury" {
		t.Errorf("claim_type = %q, want injury", got)
	}
	if result.Routing.DestinationQueue != "specialist" {
		t.Errorf("queue = %s, want specialist", result.Routing.DestinationQueue)
	}
}
