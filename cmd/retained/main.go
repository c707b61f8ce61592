package main

import (
	"github.com/chunga-ict/retained/cmd/retained/subcmd"
	"github.com/michaelquigley/pfxlog"
	"github.com/sirupsen/logrus"
)

func init() {
	pfxlog.GlobalInit(logrus.InfoLevel, pfxlog.DefaultOptions().SetTrimPrefix("github.com/chunga-ict/"))
}

func main() {
	subcmd.Execute()
}
