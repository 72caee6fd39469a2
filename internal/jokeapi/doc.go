// Package jokeapi provides an HTTP client for the JokeAPI joke provider.
//
// # Overview
//
// The package wraps a single read-only endpoint:
//
//	GET <base>/joke/<category>?blacklistFlags=nsfw,religious,political,racist,sexist,explicit
//
// and decodes the response into a Joke. The category set is fixed (Any,
// Programming, Misc, Pun, Spooky, Christmas) and exposed through Categories
// and ParseCategory.
//
// # Client Usage
//
//	client, err := jokeapi.NewClient(jokeapi.ClientOptions{})
//	if err != nil {
//		return err
//	}
//	joke, err := client.FetchJoke(ctx, jokeapi.CategoryProgramming)
//	if err != nil {
//		fmt.Println(jokeapi.UserMessage(err))
//	}
//
// # Error Handling
//
// Failures fall into three kinds, each with its own type so callers can
// branch with errors.As:
//
//   - *TransportError: the request never produced a response
//   - *StatusError: the provider answered with a non-2xx status
//   - *ProviderError: the body carried "error": true, or was not a joke
//
// The dashboard does not distinguish them. UserMessage collapses every error
// to one display string: the provider's own message when it sent one,
// otherwise GenericMessage.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json and User-Agent: jester/0.1
//   - Carry no timeout unless ClientOptions.Timeout is set
//
// There is no caching and no retry. The caller decides when to fetch again.
package jokeapi
