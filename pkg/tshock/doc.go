//
// tshock is a client for the REST API of TShock, the Terraria server administration tool.
//

// Create a server handle
//
//	server, err := tshock.NewServer("localhost", 7878, os.Getenv("TSHOCK_TOKEN"), tshock.WithTimeout(10*time.Second))
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Call an endpoint
//
//	status, err := server.ServerStatus(ctx, true, false)
//	if err != nil {
//		log.Fatal(err) // *tshock.TransportError or *tshock.DecodeError
//	}
//
//	// TShock reports failures in the JSON body, errors are not raised for HTTP 4xx/5xx.
//	if !status.OK() {
//		log.Fatalf("%s: %s", status.Status(), status.Message())
//	}
//	fmt.Println("Players:", status["playercount"])
//
// Optional parameters
//
//	// A nil pointer omits the parameter from the request.
//	server.KickPlayer(ctx, "Bob", nil)
//	server.KickPlayer(ctx, "Bob", tshock.String("griefing"))
//
//	server.UpdateUser(ctx, tshock.ByName, "Bob", tshock.UserUpdate{
//		Group: tshock.String("trustedadmin"),
//	})
//
// Endpoints not wrapped by a method
//
//	res, err := server.Request(ctx, "v2/world/spawnmob", tshock.Params{"type": "zombie", "amount": 10})
package tshock
