package shell

import (
	"github.com/vidplay-cli/vidplay/render"
	"github.com/vidplay-cli/vidplay/video"
)

// Prompter asks which search result to play. The answer is a 1-based number;
// anything else means none.
type Prompter interface {
	Ask(term string, results []*video.Video) (string, error)
}

// linePrompter prints the numbered results and takes the next input line as the answer.
type linePrompter struct {
	shell *Shell
}

func (p *linePrompter) Ask(term string, results []*video.Video) (string, error) {
	p.shell.println(render.Results(term, results))

	answer, _, err := p.shell.next(p.shell.ctx)
	return answer, err
}
