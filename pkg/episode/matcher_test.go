package episode

import "testing"

var testGuide = Guide{
	{Season: 1, Episode: 1, Title: "King of the Road"},
	{Season: 2, Episode: 5, Title: "Halloweenie"},
	{Season: 3, Episode: 6, Title: "O' Christmas Pete"},
}

func TestGuideMatch_Exact(t *testing.T) {
	m := testGuide.Match("Halloweenie")
	if m.Confidence != ConfidenceHigh {
		t.Fatalf("confidence = %s, want high (score %.2f)", m.Confidence, m.Score)
	}
	if m.Entry.CanonicalID() != "S2E5" {
		t.Errorf("matched %s, want S2E5", m.Entry.CanonicalID())
	}
}

func TestGuideMatch_ArticleAndPunctuation(t *testing.T) {
	// Leading article and apostrophes are ignored during comparison.
	m := testGuide.Match("The King of the Road")
	if m.Confidence != ConfidenceHigh || m.Entry.Episode != 1 {
		t.Errorf("match = %+v, want high-confidence S1E1", m)
	}

	m = testGuide.Match("O Christmas Pete")
	if m.Confidence != ConfidenceHigh || m.Entry.Season != 3 {
		t.Errorf("match = %+v, want high-confidence S3E6", m)
	}
}

func TestGuideMatch_NoMatch(t *testing.T) {
	if m := (Guide{}).Match("Halloweenie"); m.Confidence != ConfidenceNone {
		t.Errorf("empty guide: confidence = %s, want none", m.Confidence)
	}
	if m := testGuide.Match(""); m.Confidence != ConfidenceNone {
		t.Errorf("empty title: confidence = %s, want none", m.Confidence)
	}
}

func TestMatchConfidence_String(t *testing.T) {
	tests := []struct {
		c    MatchConfidence
		want string
	}{
		{ConfidenceNone, "none"},
		{ConfidenceLow, "low"},
		{ConfidenceMedium, "medium"},
		{ConfidenceHigh, "high"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
