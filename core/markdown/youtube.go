// ABOUTME: YouTube video ID extraction for embed detection
// ABOUTME: Recognizes watch, youtu.be, embed and shorts URL shapes

package markdown

import "regexp"

// youTubePatterns are tried in order; the first capture group is the ID.
var youTubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?(?:[^#\s]*&)?v=([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/shorts/([A-Za-z0-9_-]{11})`),
}

// YouTubeVideoID returns the 11-character video ID of a YouTube URL.
// It reports false for anything that is not a recognized YouTube URL.
func YouTubeVideoID(rawURL string) (string, bool) {
	for _, p := range youTubePatterns {
		if m := p.FindStringSubmatch(rawURL); m != nil {
			return m[1], true
		}
	}
	return "", false
}
