// Command token imprime um JWT de administrador para as rotas /api/cron.
package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"github.com/vfg2006/company-intel-api/internal/config"
	"github.com/vfg2006/company-intel-api/internal/usecases/authenticating"
	applog "github.com/vfg2006/company-intel-api/pkg/log"
)

func main() {
	subject := flag.String("subject", "ops", "identificação de quem vai usar o token")
	role := flag.String("role", authenticating.RoleAdmin, "role gravada no token")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	applog.Setup(cfg.App.LogLevel)

	token, err := authenticating.NewService(cfg).IssueToken(*subject, *role)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar token")
	}

	logrus.WithFields(logrus.Fields{
		"subject": *subject,
		"role":    *role,
		"ttl":     cfg.Auth.TokenTTL,
	}).Info("Token gerado")

	fmt.Println(token)
}
