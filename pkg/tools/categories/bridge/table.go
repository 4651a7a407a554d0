// Package bridge exposes fragment loaders as tools a model can call during a
// conversation. Each entry of the bridge table becomes one tool that looks up
// its loader at call time, hands it the argument untouched and returns the
// loader's text as the tool result.
package bridge

// Entry binds a tool name to the fragment scheme it delegates to
type Entry struct {
	ToolName    string
	Scheme      string
	Plugin      string // package that provides the loader for Scheme
	Description string
}

var entries = []Entry{
	{
		ToolName: "load_yt",
		Scheme:   "yt",
		Plugin:   "llm-fragments-youtube-transcript",
		Description: `Load transcript from a YouTube video.

Extracts the video transcript with timestamps and speaker labels when available.
Returns full metadata including title, channel name, view count, and duration.
Videos must have captions (auto-generated or manual) to extract text.

Args:
    argument: YouTube URL or video ID
        Examples: "https://youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"

Returns:
    Transcript text with video metadata (title, channel, duration, view count).
    Fails on: age-restricted, private, or caption-less videos.`,
	},
	{
		ToolName: "load_github",
		Scheme:   "github",
		Plugin:   "llm-fragments-github",
		Description: `Load source code from a GitHub repository.

Fetches text files from a public GitHub repository and returns them as
concatenated content with file path headers.

Args:
    argument: Repository in "owner/repo" format or full GitHub URL
        Examples: "simonw/llm", "https://github.com/simonw/llm"

Returns:
    Repository files as text with source attribution headers.
    Not for: single file URLs, issues, PRs, or private repositories.`,
	},
	{
		ToolName: "load_pdf",
		Scheme:   "pdf",
		Plugin:   "llm-fragments-pdf",
		Description: `Extract text from a PDF document.

Parses PDF files and extracts text content in markdown format, preserving
basic structure like headings and lists where possible. Works best with
text-based PDFs.

Args:
    argument: Local file path or URL to PDF
        Examples: "/path/to/doc.pdf", "https://example.com/report.pdf"

Returns:
    Extracted text in markdown format.
    Limitations: Scanned/image PDFs and password-protected files will fail.`,
	},
}

// Entries returns a copy of the bridge table in registration order
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the entry for a tool name
func Lookup(toolName string) (Entry, bool) {
	for _, e := range entries {
		if e.ToolName == toolName {
			return e, true
		}
	}
	return Entry{}, false
}
