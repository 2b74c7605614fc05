// Package novitaclient creates configured Novita API clients.
//
// The zero-setup path reads the API key from the NOVITA_API_KEY
// environment variable:
//
//	client, err := novitaclient.New(&novita.Config{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
// All other options are set through novita.Config. Construction performs
// no network I/O; an invalid key surfaces as an AuthenticationError on
// the first call instead.
package novitaclient
