package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/journal/docs"
	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `jnl topic [-l] [<topic>...]

  Show documentation for the given topics, or the readme.
  Use '*' to show every topic, and -l to list them.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "l", false, "List the topics.")
}

func (c *topicCmd) complete(cmd *complete.Command) {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return
	}
	cmd.Args = predict.Set(topics)
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		return c.listTopics()
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

func (c *topicCmd) listTopics() subcommands.ExitStatus {
	topics, err := docs.GetAllTopics()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing topics: %v\n", err)
		return subcommands.ExitFailure
	}
	var items []string
	for _, topic := range topics {
		title, err := docs.Title(topic)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
			return subcommands.ExitFailure
		}
		items = append(items, fmt.Sprintf("%s: %s", topic, title))
	}

	var b strings.Builder
	doc := md.NewMarkdown(&b)
	doc.H1("Topics")
	doc.BulletList(items...)
	printMarkdown(doc.String())
	return subcommands.ExitSuccess
}
