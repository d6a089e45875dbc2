// Package comment boots the comment bundle configuration into a
// dependency-injection container inside an Fx application.
//
//	app := comment.NewApp(
//	    comment.WithConfigFile("config/app.yml"),
//	    comment.WithInspectListener("inspect", inspect.WithAddress("127.0.0.1:8081")),
//	)
//	app.Run()
//
// The compiled *container.Container is provided to the Fx graph, so other
// modules can depend on it directly.
package comment
