// internal/profile/normalize.go
//
// Legacy-spelling normalisation for store documents.
//
// Context
// -------
// Profile and project documents come back from the store as JSON.  Older
// revisions wrote `githubProfile`, `linkedInProfile`, `leetcodeProfile`,
// and `twitterProfile` inside socialLinks, and projects carry the
// misspelled `soureCodeUrl` alongside (or instead of) `sourceCodeUrl`.
// These decoders fold every known spelling onto the canonical schema.
// Canonical keys win when both spellings are present.
package profile

import "encoding/json"

// rawSocialLinks accepts both generations of key names.
type rawSocialLinks struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	LeetCode string `json:"leetcode"`
	Twitter  string `json:"twitter"`

	GitHubProfile   string `json:"githubProfile"`
	LinkedInProfile string `json:"linkedInProfile"`
	LeetCodeProfile string `json:"leetcodeProfile"`
	TwitterProfile  string `json:"twitterProfile"`
}

// UnmarshalJSON decodes either spelling generation into canonical fields.
func (s *SocialLinks) UnmarshalJSON(data []byte) error {
	var raw rawSocialLinks
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.GitHub = pick(raw.GitHub, raw.GitHubProfile)
	s.LinkedIn = pick(raw.LinkedIn, raw.LinkedInProfile)
	s.LeetCode = pick(raw.LeetCode, raw.LeetCodeProfile)
	s.Twitter = pick(raw.Twitter, raw.TwitterProfile)
	return nil
}

// UnmarshalJSON folds the historical `soureCodeUrl` misspelling into
// SourceCodeURL.  All other fields decode as tagged.
func (p *ProjectSummary) UnmarshalJSON(data []byte) error {
	type plain ProjectSummary // avoid recursing into this method
	var raw struct {
		plain
		SoureCodeURL string `json:"soureCodeUrl"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = ProjectSummary(raw.plain)
	p.SourceCodeURL = pick(raw.plain.SourceCodeURL, raw.SoureCodeURL)
	return nil
}

// pick returns the canonical value when set, otherwise the legacy one.
func pick(canonical, legacy string) string {
	if canonical != "" {
		return canonical
	}
	return legacy
}
