package model

import (
	"math"
	"testing"

	"github.com/cloudwego/eino/schema"
)

func TestComputeCost(t *testing.T) {
	p := ResolvePricing(" Gemini-2.5-Flash-Lite ")
	if p.InputPerM != 0.10 || p.OutputPerM != 0.40 {
		t.Fatalf("pricing: %+v", p)
	}

	c := ComputeCost(&schema.TokenUsage{PromptTokens: 1_000_000, CompletionTokens: 500_000, TotalTokens: 1_500_000}, p)
	if math.Abs(c.InputCost-0.10) > 1e-9 || math.Abs(c.OutputCost-0.20) > 1e-9 || math.Abs(c.Total-0.30) > 1e-9 {
		t.Errorf("cost: %+v", c)
	}
	if c.TotalTokens != 1_500_000 {
		t.Errorf("tokens: %d", c.TotalTokens)
	}

	if got := ComputeCost(nil, p); got != (UsageCost{}) {
		t.Errorf("nil usage: %+v", got)
	}
	if got := ResolvePricing("llama3"); got != (Pricing{}) {
		t.Errorf("unknown model should be free: %+v", got)
	}
}
