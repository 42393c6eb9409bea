package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/twobob/openRouterFree/internal/api"
	"github.com/twobob/openRouterFree/internal/config"
	"github.com/twobob/openRouterFree/internal/conversation"
	"github.com/twobob/openRouterFree/internal/credentials"
	"github.com/twobob/openRouterFree/internal/logger"
)

var app *tview.Application

var (
	debugConsole *tview.TextView
	textView     *tview.TextView
	textArea     *tview.TextArea
	localLogger  *logger.Logger

	service *api.Service
	creds   *credentials.Store
	convo   *conversation.Conversation
)

func Init() {
	app = tview.NewApplication()
	app.EnablePaste(true)
	app.EnableMouse(true)

	debugConsole = initDebugConsole()

	textView = initChatViewer()
	textArea = initChatInput()
}

func initChatViewer() *tview.TextView {
	textView := tview.NewTextView().
		SetChangedFunc(func() {
			app.Draw()
		}).
		SetDynamicColors(true).
		SetRegions(true).
		SetWordWrap(true)

	textView.SetTitle("Conversation").SetBorder(true)
	textView.SetScrollable(true)
	textView.ScrollToEnd()
	return textView
}

func initChatInput() *tview.TextArea {
	textArea := tview.NewTextArea()
	textArea.SetTitle("Question").SetBorder(true)
	return textArea
}

func initDebugConsole() *tview.TextView {
	console := tview.NewTextView().
		SetChangedFunc(func() {
			app.Draw()
		}).
		SetDynamicColors(true).
		SetRegions(true).
		SetWordWrap(true)

	console.SetTitle("Debugger").SetBorder(true)
	console.ScrollToEnd()
	return console
}

func GetDebugConsole() (*tview.TextView, error) {
	if debugConsole == nil {
		return nil, errors.New("debug console not initialized")
	}
	return debugConsole, nil
}

func Run(svc *api.Service, store *credentials.Store) {
	service = svc
	creds = store
	convo = conversation.New()
	localLogger = logger.NewLogger("views")

	textView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter:
			app.SetFocus(textArea)
		}
		return event
	})

	subFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(textView, 0, 1, false).
		AddItem(textArea, 8, 2, true)
	mainFlex := tview.NewFlex().
		AddItem(subFlex, 0, 2, false)

	if config.Dev {
		mainFlex.AddItem(debugConsole, 0, 1, true)
	}

	setInputCapture(mainFlex)

	if creds.Get() == "" {
		fmt.Fprintf(textView, "No API key found. Use /key to set your OpenRouter key.\n")
	}

	if err := app.SetRoot(mainFlex, true).SetFocus(textArea).Run(); err != nil {
		panic(err)
	}
}

func setInputCapture(mainFlex *tview.Flex) {
	textArea.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyESC:
			if textView.GetText(false) != "" {
				app.SetFocus(textView)
			}
		case tcell.KeyEnter:
			content := textArea.GetText()
			if strings.TrimSpace(content) == "" {
				return nil
			}
			textArea.SetText("", true)
			textArea.SetDisabled(true)

			trimmed := strings.TrimSpace(content)
			command, argument := splitCommand(trimmed)
			switch command {
			case "/help":
				listHelp(trimmed)
				textArea.SetDisabled(false)
				return event
			case "/bye":
				quitApp()
				return event
			case "/debug":
				toggleDebugConsole(mainFlex)
				textArea.SetDisabled(false)
				return event
			case "/models":
				go func() {
					createModelModal(mainFlex)
				}()
				return event
			case "/key":
				createKeyModal(mainFlex)
				return event
			case "/new":
				newChat()
				textArea.SetDisabled(false)
				return event
			case "/export":
				exportChat(argument)
				textArea.SetDisabled(false)
				return event
			case "/import":
				importChat(argument)
				textArea.SetDisabled(false)
				return event
			}

			if creds.Get() == "" {
				fmt.Fprintf(textView, "\nAn OpenRouter key is required. Use /key to set one.\n")
				localLogger.Warn("Send refused, no API key configured")
				textArea.SetDisabled(false)
				return event
			}

			go func() {
				sendMessage(trimmed)
				textArea.SetDisabled(false)
			}()
		}
		return event
	})
}

func splitCommand(content string) (string, string) {
	if !strings.HasPrefix(content, "/") {
		return "", ""
	}
	parts := strings.SplitN(content, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

func sendMessage(content string) {
	app.QueueUpdateDraw(func() {
		fmt.Fprintln(textView, "\n\n[red::]You:[-]")
		fmt.Fprintf(textView, "%s\n\n", content)
	})

	reply, err := service.Send(context.Background(), convo, content)

	app.QueueUpdateDraw(func() {
		fmt.Fprintf(textView, "[green::]Bot:[-]\n")
		if err != nil {
			fmt.Fprintf(textView, "[red]Error: %s[-]\n", err)
			return
		}
		fmt.Fprintf(textView, "%s\n", reply)
	})
}

func createModal(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}

func createModelModal(mainFlex *tview.Flex) {
	models := service.RefreshModels(context.Background())
	currentModel := service.Model()

	var pages *tview.Pages
	list := tview.NewList()
	list.SetBorder(true).SetTitle("Free models")
	for i, model := range models {
		model := model
		runeValue := '0' + rune(i%10)

		if model.API == currentModel {
			list.AddItem(model.Display, "Current LLM", runeValue, func() {
				localLogger.Info("This model is currently in use: ", model.API)
				fmt.Fprintf(textView, "\nAlready using model: %s\n\n", model.Display)
			})
		} else {
			list.AddItem(model.Display, "LLM", runeValue, func() {
				localLogger.Info("Selected: ", model.API)
				service.SetModel(model.API)
				fmt.Fprintf(textView, "\nUsing Model: %s\n\n", model.Display)

				pages.RemovePage("modelModal")
				textArea.SetDisabled(false)
				app.SetFocus(textArea)
			})
		}
	}
	list.AddItem("Back", "", 'q', func() {
		pages.RemovePage("modelModal")
		textArea.SetDisabled(false)
		app.SetFocus(textArea)
	})
	modal := createModal(list, 60, 16)

	pages = tview.NewPages().
		AddPage("main", mainFlex, true, true).
		AddPage("modelModal", modal, true, true)

	app.QueueUpdateDraw(func() {
		app.SetRoot(pages, true)
		app.SetFocus(list)
	})
	localLogger.Info("/models command executed and completed")
}

func createKeyModal(mainFlex *tview.Flex) {
	var pages *tview.Pages

	form := tview.NewForm()
	form.SetBorder(true).SetTitle("OpenRouter API key")
	form.AddPasswordField(credentials.KeyName, "", 48, '*', nil)
	form.AddButton("Save", func() {
		field := form.GetFormItem(0).(*tview.InputField)
		value := strings.TrimSpace(field.GetText())
		if value == "" {
			fmt.Fprintf(textView, "\nEmpty key, nothing saved.\n")
		} else if err := creds.Save(value); err != nil {
			localLogger.Error("Failed to save API key: ", err)
			fmt.Fprintf(textView, "\nFailed to save key: %s\n", err)
		} else {
			fmt.Fprintf(textView, "\nAPI key saved.\n")
		}
		pages.RemovePage("keyModal")
		textArea.SetDisabled(false)
		app.SetFocus(textArea)
	})
	form.AddButton("Cancel", func() {
		pages.RemovePage("keyModal")
		textArea.SetDisabled(false)
		app.SetFocus(textArea)
	})

	modal := createModal(form, 64, 9)
	pages = tview.NewPages().
		AddPage("main", mainFlex, true, true).
		AddPage("keyModal", modal, true, true)

	app.SetRoot(pages, true)
	app.SetFocus(form)
}

func newChat() {
	convo.Reset()
	textView.Clear()
	fmt.Fprintf(textView, "Hello! How can I help you today?\n")
	localLogger.Info("Conversation cleared")
}

func exportChat(path string) {
	if path == "" {
		fmt.Fprintf(textView, "\nUsage: /export <path>\n")
		return
	}
	file, err := os.Create(path)
	if err != nil {
		localLogger.Error("Failed to create export file: ", err)
		fmt.Fprintf(textView, "\nFailed to export: %s\n", err)
		return
	}
	defer file.Close()

	if err := convo.ExportJSON(file); err != nil {
		localLogger.Error("Failed to export chat: ", err)
		fmt.Fprintf(textView, "\nFailed to export: %s\n", err)
		return
	}
	fmt.Fprintf(textView, "\nChat history saved to %s\n", path)
}

func importChat(path string) {
	if path == "" {
		fmt.Fprintf(textView, "\nUsage: /import <path>\n")
		return
	}
	file, err := os.Open(path)
	if err != nil {
		localLogger.Error("Failed to open import file: ", err)
		fmt.Fprintf(textView, "\nFailed to import: %s\n", err)
		return
	}
	defer file.Close()

	if err := convo.ImportJSON(file); err != nil {
		localLogger.Error("Failed to import chat: ", err)
		fmt.Fprintf(textView, "\nFailed to import: %s\n", err)
		return
	}

	textView.Clear()
	for _, entry := range convo.Entries() {
		if entry.Role == conversation.RoleUser {
			fmt.Fprintln(textView, "\n[red::]You:[-]")
		} else {
			fmt.Fprintln(textView, "\n[green::]Bot:[-]")
		}
		fmt.Fprintf(textView, "%s\n", entry.Content)
	}
	fmt.Fprintf(textView, "\nChat history loaded from %s\n", path)
}

func toggleDebugConsole(mainFlex *tview.Flex) {
	go func() {
		// todo should be based on if the item is apart of the mainFlex
		if !config.Dev {
			app.QueueUpdateDraw(func() {
				mainFlex.AddItem(debugConsole, 0, 1, true)
				fmt.Fprintf(textView, "\nDebug console enabled\n")
			})
		} else {
			app.QueueUpdateDraw(func() {
				mainFlex.RemoveItem(debugConsole)
				fmt.Fprintf(textView, "\nDebug console disabled\n")
			})
		}
	}()
}

func quitApp() {
	fmt.Fprintf(textView, "Bye bye\n")
	localLogger.Close()
	app.Stop()
}

func listHelp(content string) {
	fmt.Fprintln(textView, "[red::]You:[-]")
	fmt.Fprintf(textView, "%s\n\n", content)

	fmt.Fprintf(textView, "[green::]Bot:[-]\n")
	fmt.Fprintf(textView, "Here are some commands you can use:\n")
	fmt.Fprintf(textView, "- /help: Display this help message\n")
	fmt.Fprintf(textView, "- /bye: Exit the application\n")
	fmt.Fprintf(textView, "- /debug: Toggle the debug console\n")
	fmt.Fprintf(textView, "- /models: Select between free models\n")
	fmt.Fprintf(textView, "- /key: Set the OpenRouter API key\n")
	fmt.Fprintf(textView, "- /new: Start a fresh conversation\n")
	fmt.Fprintf(textView, "- /export <path>: Save the chat history as JSON\n")
	fmt.Fprintf(textView, "- /import <path>: Load a chat history from JSON\n\n")
}
