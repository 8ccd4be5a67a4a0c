package database

import (
	"fmt"
	"io"
	"strings"
)

// WriteTroubleshooting prints hints for a store that could not be reached at startup.
func WriteTroubleshooting(w io.Writer, uri string) {
	tips := []string{
		"Make sure MongoDB is running (default host: localhost:27017).",
		"  With Docker: docker run -d --name mongo -p 27017:27017 mongo:7",
		"  Or start the mongod binary directly: mongod --dbpath ./data/db",
		"Or use MongoDB Atlas: create a cluster and set MONGO_URI in a .env file.",
		"Transactions need a replica set; for a single node start mongod with --replSet rs0 and run rs.initiate().",
	}
	if strings.Contains(uri, "localhost") {
		tips = append(tips, "If you see an IPv6 ::1 connection refused error, set MONGO_URI to 127.0.0.1 explicitly.")
	}

	fmt.Fprintln(w, "\nFailed to connect to MongoDB at", RedactURI(uri))
	fmt.Fprintln(w, "\nTroubleshooting tips:")
	for _, tip := range tips {
		if strings.HasPrefix(tip, " ") {
			fmt.Fprintln(w, tip)
			continue
		}
		fmt.Fprintln(w, "-", tip)
	}
}

// RedactURI hides credentials in a connection string before it is logged.
func RedactURI(uri string) string {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return uri
	}
	creds, host, ok := strings.Cut(rest, "@")
	if !ok {
		return uri
	}
	user, _, _ := strings.Cut(creds, ":")
	return scheme + "://" + user + ":***@" + host
}
