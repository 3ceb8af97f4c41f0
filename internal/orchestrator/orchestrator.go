// Package orchestrator runs the full translation pipeline: segment the input
// into sentences, then for each sentence detect its script mix, mask terms
// that must survive translation, route it through the external service, and
// restore the masked terms. Results are joined in segmentation order.
package orchestrator

import (
	"context"
	"strings"
	"sync"

	"github.com/valmik/hinglate/internal/preserve"
	"github.com/valmik/hinglate/internal/router"
	"github.com/valmik/hinglate/internal/script"
	"github.com/valmik/hinglate/internal/segmenter"
)

type Config struct {
	// Parallelism bounds how many sentences are translated concurrently.
	// Values ≤ 1 keep the original strictly sequential behaviour. Output
	// order is segmentation order either way.
	Parallelism int
}

type Orchestrator struct {
	router *router.Router
	config Config
}

func New(r *router.Router, config Config) *Orchestrator {
	return &Orchestrator{router: r, config: config}
}

// Translate converts mixed Hindi/English input to English. Empty or
// whitespace-only input returns "" without touching the service. The first
// failing sentence (in segmentation order) aborts the whole translation and
// its *translator.ServiceError is returned; no partial output is produced.
func (o *Orchestrator) Translate(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	var sentences []string
	for _, s := range segmenter.Split(text) {
		if strings.TrimSpace(s) == "" {
			continue
		}
		sentences = append(sentences, s)
	}

	var results []string
	var err error
	if o.config.Parallelism > 1 && len(sentences) > 1 {
		results, err = o.translateParallel(ctx, sentences)
	} else {
		results, err = o.translateSequential(ctx, sentences)
	}
	if err != nil {
		return "", err
	}

	return strings.Join(results, " "), nil
}

func (o *Orchestrator) translateSequential(ctx context.Context, sentences []string) ([]string, error) {
	results := make([]string, 0, len(sentences))
	for _, sentence := range sentences {
		translated, err := o.translateSentence(ctx, sentence)
		if err != nil {
			return nil, err
		}
		results = append(results, translated)
	}
	return results, nil
}

// translateParallel fans sentences out to a bounded number of workers.
// Results are written to their sentence's slot so segmentation order is
// preserved; when several sentences fail, the earliest one wins.
func (o *Orchestrator) translateParallel(ctx context.Context, sentences []string) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		index int
		text  string
		err   error
	}

	sem := make(chan struct{}, o.config.Parallelism)
	outcomes := make(chan outcome, len(sentences))

	var wg sync.WaitGroup
	for i, sentence := range sentences {
		wg.Add(1)
		go func(index int, sentence string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			translated, err := o.translateSentence(ctx, sentence)
			outcomes <- outcome{index: index, text: translated, err: err}
			if err != nil {
				cancel()
			}
		}(i, sentence)
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	results := make([]string, len(sentences))
	firstErrIndex := -1
	var firstErr error
	for oc := range outcomes {
		if oc.err != nil {
			if firstErrIndex == -1 || oc.index < firstErrIndex {
				firstErrIndex = oc.index
				firstErr = oc.err
			}
			continue
		}
		results[oc.index] = oc.text
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

func (o *Orchestrator) translateSentence(ctx context.Context, sentence string) (string, error) {
	// Detect on the sentence as written; masking strips the capitalized
	// Latin words the detector needs to see.
	mix := script.DetectMix(sentence)

	masked, terms := preserve.Mask(sentence)

	translated, err := o.router.Route(ctx, masked, mix)
	if err != nil {
		return "", err
	}

	return preserve.Restore(translated, terms), nil
}
