// Package novita defines the public types and interfaces of the Novita
// GPU instance API client.
//
// The package contains the resource models exchanged with the API, the
// client interfaces implemented by internal/client, and the error taxonomy
// returned by all operations. Construct a client with the novitaclient
// package:
//
//	client, err := novitaclient.NewWithAPIKey("sk_...")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	instances, err := client.GPU().Instances().List(ctx, nil)
package novita
