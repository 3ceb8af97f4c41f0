// Package router picks a translation path for a single sentence based on its
// script mix and invokes the external translation service accordingly.
//
// Decision table:
//
//	Hindi + English → translate to Hindi first (auto source), then Hindi → English
//	Hindi only      → Hindi → English directly
//	anything else   → auto-detected source → English directly
//
// Every service call is a single request/response. There is no retry and no
// caching; any failure surfaces as a *translator.ServiceError.
package router

import (
	"context"

	"github.com/valmik/hinglate/internal/script"
	"github.com/valmik/hinglate/internal/translator"
)

type Router struct {
	svc translator.Service
	cfg translator.ServiceConfig
}

func New(svc translator.Service, cfg translator.ServiceConfig) *Router {
	return &Router{svc: svc, cfg: cfg}
}

// Route translates one sentence to English. mix must describe the sentence as
// it was written; callers that mask terms before translating should detect
// the mix on the unmasked sentence.
func (r *Router) Route(ctx context.Context, sentence string, mix script.Mix) (string, error) {
	switch {
	case mix.HasHindi && mix.HasEnglish:
		// Mixed script: normalise to Hindi first, then bring it to English.
		hindi, err := r.call(ctx, sentence, translator.LangAuto, translator.LangHindi)
		if err != nil {
			return "", err
		}
		return r.call(ctx, hindi, translator.LangHindi, translator.LangEnglish)

	case mix.HasHindi:
		return r.call(ctx, sentence, translator.LangHindi, translator.LangEnglish)

	default:
		return r.call(ctx, sentence, translator.LangAuto, translator.LangEnglish)
	}
}

func (r *Router) call(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	res, err := r.svc.Translate(ctx, r.cfg, translator.TranslateRequest{
		Text:       text,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	})
	if err != nil {
		return "", translator.NewServiceError(r.svc.Name(), "translate call failed", err)
	}
	return res.TranslatedText, nil
}
