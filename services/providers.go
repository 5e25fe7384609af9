package services

import (
	"net/http"
	"time"

	"github.com/l3montree-dev/livefire-site/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(func() http.Client {
		return http.Client{Timeout: 10 * time.Second}
	}),
	fx.Provide(fx.Annotate(NewRecaptchaVerifier, fx.As(new(shared.ChallengeVerifier)))),
	fx.Provide(fx.Annotate(NewSMTPMailSender, fx.As(new(shared.MailSender)))),
	fx.Provide(fx.Annotate(NewContentService, fx.As(new(shared.ContentReader)))),
	fx.Provide(fx.Annotate(NewCommentService, fx.As(new(shared.CommentService)))),
	fx.Provide(fx.Annotate(NewContactService, fx.As(new(shared.ContactService)))),
	fx.Provide(fx.Annotate(NewScheduleService, fx.As(new(shared.ScheduleService)))),
)
