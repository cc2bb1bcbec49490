package review

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/carddown/internal/domain"
)

// Run drives the session through a line-oriented terminal loop: show the
// prompt, reveal the response on enter, read a 0-5 grade. "q" quits early
// and maxDuration (zero disables it) bounds the session; either way the
// accumulated results are flushed exactly once before returning.
func Run(s *Session, in io.Reader, out io.Writer, maxDuration time.Duration) (err error) {
	defer func() {
		if ferr := s.Finish(); ferr != nil && err == nil {
			err = ferr
		}
	}()

	start := time.Now()
	reader := bufio.NewScanner(in)

	for {
		entry, ok := s.Current()
		if !ok {
			fmt.Fprintln(out, "Session complete.")
			return nil
		}
		if maxDuration > 0 && time.Since(start) >= maxDuration {
			fmt.Fprintln(out, "Session time is up.")
			return nil
		}

		fmt.Fprintf(out, "\n[%d left] %s\n", s.Remaining(), entry.Card.Prompt)
		if entry.Leech {
			fmt.Fprintln(out, "(leech: this card keeps failing)")
		}

		fmt.Fprint(out, "press enter to reveal, q to quit: ")
		line, ok := readLine(reader)
		if !ok {
			return reader.Err()
		}
		if strings.EqualFold(line, "q") {
			return nil
		}

		for _, respLine := range entry.Card.Response {
			fmt.Fprintln(out, respLine)
		}

		fmt.Fprint(out, "grade 0-5 (q to quit): ")
		for {
			line, ok := readLine(reader)
			if !ok {
				return reader.Err()
			}
			if strings.EqualFold(line, "q") {
				return nil
			}
			quality, parseErr := parseGrade(line)
			if parseErr != nil {
				fmt.Fprint(out, "enter a number from 0 to 5: ")
				continue
			}
			if gradeErr := s.Grade(quality); gradeErr != nil {
				return gradeErr
			}
			break
		}
	}
}

func readLine(reader *bufio.Scanner) (string, bool) {
	if !reader.Scan() {
		return "", false
	}
	return strings.TrimSpace(reader.Text()), true
}

func parseGrade(line string) (domain.Quality, error) {
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidQuality, line)
	}
	return domain.ParseQuality(n)
}
