// Package chat is the client for the Mathison chat and beams API.
//
// Client performs blocking calls:
//
//	client, err := chat.New(&apiclient.Config{
//		BaseURL: "http://localhost:3000",
//		APIKey:  os.Getenv("MATHISON_API_KEY"),
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	resp, err := client.QueryBeams(ctx, chat.BeamQuery{
//		Tags:  []string{"a", "b"},
//		Limit: apiclient.Ptr(10),
//	})
//
// AsyncClient offers the same operations returning futures:
//
//	async, _ := chat.NewAsync(cfg)
//	defer async.Close()
//
//	health := async.Health(ctx)
//	beams := async.QueryBeams(ctx, chat.BeamQuery{})
//	h, err := health.Await(ctx)
//
// Beams move through active, retired and tombstoned states. The server owns
// that state machine; this package only issues the requests.
package chat
