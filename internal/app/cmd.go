package app

// Command representa o modo de execução da aplicação.
type Command string

const (
	// CommandServe sobe a API da loja com os jobs de fundo no mesmo processo.
	CommandServe Command = "serve"
	// CommandWorker executa apenas os jobs de fundo.
	CommandWorker Command = "worker"
	// CommandMigrate aplica as migrações de banco pendentes.
	CommandMigrate Command = "migrate"
	// CommandHealthcheck consulta o /healthz do processo local.
	// Para o healthcheck do Docker em imagens distroless.
	CommandHealthcheck Command = "healthcheck"
)

// ParseCommand interpreta o subcomando da linha de comando.
// Sem argumento ou com comando desconhecido, assume serve.
func ParseCommand(args []string) Command {
	if len(args) == 0 {
		return CommandServe
	}

	switch args[0] {
	case "serve":
		return CommandServe
	case "worker":
		return CommandWorker
	case "migrate":
		return CommandMigrate
	case "healthcheck":
		return CommandHealthcheck
	default:
		return CommandServe
	}
}
