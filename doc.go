// Package discourses is the Go client for the Discourses financial
// sentiment-analysis API. All analysis happens server-side; the SDK builds
// requests, attaches bearer-token authentication, and decodes responses
// into typed results.
//
// Basic usage:
//
//	client, err := discourses.New(apiKey)
//	if err != nil {
//		return err
//	}
//
//	result, err := client.Analyze(ctx, "Strong growth with excellent outlook", discourses.EraPresent)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s (outlook %.2f)\n", result.Label, result.Outlook)
//
// API failures are returned as *Error with a Kind discriminant; input
// mistakes caught before the request is sent wrap ErrInvalidInput:
//
//	var apiErr *discourses.Error
//	if errors.As(err, &apiErr) && apiErr.Kind == discourses.ErrorKindRateLimit {
//		time.Sleep(apiErr.RetryAfter)
//	}
package discourses
