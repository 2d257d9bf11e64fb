package analysis

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/goliatone/go-articles/pkg/testsupport"
)

type reportSummary struct {
	Meta             Meta           `json:"meta"`
	Topics           map[string]int `json:"topics"`
	TopicsNormalized map[string]int `json:"topics_normalized"`
	Emojis           map[string]int `json:"emojis"`
	Types            map[string]int `json:"types"`
	ContentTypes     map[string]int `json:"content_types"`
	Versions         map[string]int `json:"versions"`
	Structure        Structure      `json:"structure"`
}

func TestAnalyzeCorpusMatchesGolden(t *testing.T) {
	stats, err := NewService(Config{}).Analyze(context.Background(), "testdata/corpus")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	payload, err := EncodeJSON(stats)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	var got reportSummary
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("decode report: %v", err)
	}

	var want reportSummary
	if err := testsupport.LoadGolden("testdata/corpus.golden.json", &want); err != nil {
		t.Fatalf("load golden: %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("report mismatch\n got: %+v\nwant: %+v", got, want)
	}
}
