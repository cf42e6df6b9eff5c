package siteclient

import (
	"context"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/apiclient"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/mutate"
)

// NewsletterSubscribe returns the single-field newsletter signup mutator.
func (c *Client) NewsletterSubscribe() *mutate.Mutator[string, NewsletterSubscription] {
	return mutate.New(func(ctx context.Context, email string) (NewsletterSubscription, error) {
		env, err := c.api.Post(ctx, "/api/newsletter/subscribe", map[string]string{"email": email})
		if err != nil {
			return NewsletterSubscription{}, err
		}
		return apiclient.Decode[NewsletterSubscription](env)
	}, mutate.WithNotifier(c.notifier))
}

// NewsletterSubscribeOptions is the default feedback for the signup form.
func NewsletterSubscribeOptions() mutate.Options {
	opts := mutate.DefaultOptions()
	opts.SuccessMessage = "You are subscribed! Watch your inbox for wedding inspiration."
	return opts
}
