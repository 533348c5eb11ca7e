package episode

// Kind of a media link
type Kind int

const (
	// Audio link, carries the _download marker
	Audio Kind = iota
	// Worksheet link, carries the _worksheet marker
	Worksheet
)

// LinkEntry is one classified line of the links file
type LinkEntry struct {
	URL  string
	Kind Kind
	Key  string
}

// Episode is an audio/worksheet pair sharing one key
type Episode struct {
	Key          string
	FolderName   string
	AudioURL     string
	WorksheetURL string
}

// AudioFilename of episode inside its folder
func (e Episode) AudioFilename() string {
	return e.Key + "_download.mp3"
}

// WorksheetFilename of episode inside its folder
func (e Episode) WorksheetFilename() string {
	return e.Key + "_worksheet.pdf"
}
