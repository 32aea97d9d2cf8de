// ABOUTME: Basic example showing rendering and pagination with the Pamphlets library
// ABOUTME: Demonstrates minimal configuration and common use cases

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	pamphlets "pamphlets-api/lib"
)

const sample = `# Common Sense

Some writers have so confounded society with government, as to leave little or no distinction between them.

> Society in every state is a blessing, but government even in its best state is but a necessary evil.

- Society is produced by our wants
- Government by our **wickedness**

https://www.youtube.com/watch?v=dQw4w9WgXcQ`

func main() {
	client, err := pamphlets.NewClient(pamphlets.WithMaxChars(200))
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	ctx := context.Background()

	fmt.Println("=== Rendering Blocks ===")
	nodes, err := client.RenderBlocks(ctx, sample)
	if err != nil {
		log.Fatal(err)
	}
	for _, node := range nodes {
		fmt.Printf("- %s\n", node.Kind)
	}

	fmt.Println("\n=== Paginating ===")
	pages, err := client.Paginate(ctx, sample, 0)
	if err != nil {
		log.Fatal(err)
	}
	for i, page := range pages {
		fmt.Printf("Page %d: %d chars\n", i+1, len([]rune(page)))
	}

	fmt.Println("\n=== Opening a Book ===")
	article := &pamphlets.Article{
		ID:          "common-sense",
		Title:       "Common Sense",
		Author:      "Thomas Paine",
		PublishedAt: time.Date(1776, 1, 10, 0, 0, 0, 0, time.UTC),
		Content:     []pamphlets.ContentBlock{{Type: pamphlets.BlockParagraph, Content: sample}},
	}
	if _, err := client.SaveArticle(ctx, article); err != nil {
		log.Fatal(err)
	}
	view, err := client.OpenBook(ctx, article, 1, 0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s by %s, %s read\n", view.Meta.Title, view.Meta.Author, view.Meta.ReadingTime)
	fmt.Printf("Spread %d of %d, pages %v\n", view.Spread.Index+1, view.SpreadCount, view.Spread.Pages())

	if len(os.Args) > 1 {
		fmt.Println("\n=== Importing ===")
		imported, err := client.Import(ctx, os.Args[1])
		switch {
		case pamphlets.IsNetworkError(err):
			fmt.Printf("Could not fetch page: %v\n", err)
		case err != nil:
			fmt.Printf("Import failed: %v\n", err)
		default:
			fmt.Printf("Imported %q (%d blocks)\n", imported.Title, len(imported.Content))
		}
	}

	if id, ok := pamphlets.YouTubeVideoID("https://youtu.be/dQw4w9WgXcQ"); ok {
		fmt.Printf("\nVideo ID: %s\n", id)
	}
}
