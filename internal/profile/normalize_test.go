package profile

import (
	"encoding/json"
	"testing"
)

func TestSocialLinks_LegacyKeys(t *testing.T) {
	doc := `{
		"githubProfile":   "https://github.com/jatin",
		"linkedInProfile": "https://linkedin.com/in/jatin",
		"leetcodeProfile": "https://leetcode.com/jatin",
		"twitterProfile":  "https://twitter.com/jatin"
	}`
	var s SocialLinks
	if err := json.Unmarshal([]byte(doc), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.GitHub != "https://github.com/jatin" ||
		s.LinkedIn != "https://linkedin.com/in/jatin" ||
		s.LeetCode != "https://leetcode.com/jatin" ||
		s.Twitter != "https://twitter.com/jatin" {
		t.Fatalf("legacy keys not folded: %+v", s)
	}
}

func TestSocialLinks_CanonicalWinsOverLegacy(t *testing.T) {
	doc := `{"github": "new", "githubProfile": "old"}`
	var s SocialLinks
	if err := json.Unmarshal([]byte(doc), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.GitHub != "new" {
		t.Fatalf("canonical key lost to legacy: %q", s.GitHub)
	}
}

func TestSocialLinks_CanonicalRoundTrip(t *testing.T) {
	in := SocialLinks{GitHub: "g", LinkedIn: "l", LeetCode: "c"}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// Legacy spellings must never be re-emitted.
	var keys map[string]any
	if err := json.Unmarshal(data, &keys); err != nil {
		t.Fatalf("unmarshal keys: %v", err)
	}
	if _, ok := keys["githubProfile"]; ok {
		t.Fatal("legacy key emitted on marshal")
	}

	var out SocialLinks
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Fatalf("round trip changed value: %+v", out)
	}
}

func TestProjectSummary_MisspelledSourceURL(t *testing.T) {
	doc := `{
		"id": "p1", "title": "Chat App", "userId": "jatin",
		"liveUrl": "https://chat.example.com",
		"soureCodeUrl": "https://github.com/jatin/chat",
		"technologies": ["go", "react"]
	}`
	var p ProjectSummary
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.SourceCodeURL != "https://github.com/jatin/chat" {
		t.Fatalf("misspelled key not folded: %q", p.SourceCodeURL)
	}
	if p.ID != "p1" || p.UserID != "jatin" || len(p.Technologies) != 2 {
		t.Fatalf("plain fields lost: %+v", p)
	}
}

func TestProjectSummary_CorrectSpellingWins(t *testing.T) {
	doc := `{"sourceCodeUrl": "right", "soureCodeUrl": "wrong"}`
	var p ProjectSummary
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.SourceCodeURL != "right" {
		t.Fatalf("correct spelling lost: %q", p.SourceCodeURL)
	}
}

func TestProjectSummary_NoInternalFieldsOnMarshal(t *testing.T) {
	data, err := json.Marshal(ProjectSummary{ID: "p1", Title: "t", UserID: "u"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var keys map[string]any
	if err := json.Unmarshal(data, &keys); err != nil {
		t.Fatalf("unmarshal keys: %v", err)
	}
	for _, internal := range []string{"description", "imageUrls", "videoUrl", "finishedDate", "soureCodeUrl"} {
		if _, ok := keys[internal]; ok {
			t.Fatalf("internal field %q leaked", internal)
		}
	}
}
