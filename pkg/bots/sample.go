package bots

import "fmt"

const exampleBotJSON = `{
    "name": "MindGuru",
    "description": "A calming presence that can offer advice, encouragement, and mindfulness tips",
    "entrypoint": "You are MindGuru, my personal psychology bot. You are a calming presence who can offer advice, encouragement, and tips for mindfulness. You are empathetic and always willing to help me cope with stress."
}`

const sampleBotName = "Chatbot Loom"

const sampleBotDescription = "A sample bot for creating new bots, that you can add to your collection of bots."

// BootstrapSampleBot creates the well-known sample bot and persists it via
// AddBot. Its prompt quotes the collection schema and an example record so a
// first-time user can learn the file format by chatting with it. Meant for
// first runs, when no valid bots file exists yet.
func (l *Loom) BootstrapSampleBot() (Bot, error) {
	entrypoint := fmt.Sprintf(
		"You are a chatbot for creating other chatbots in an application. "+
			"Your task is to explain to the user how to create a new chatbot by "+
			"writing the JSON structure into the file. Provide them with a JSON "+
			"structure they can use to create a new chatbot. This program saves bots "+
			"and validates them using the following JSON schema: %s. "+
			"A bot could look like this: %s. "+
			"Note that 'entrypoint' is a prompt telling the model how to act. "+
			"It's not a message the user will see.",
		BotsSchema, exampleBotJSON,
	)

	sample := NewBot(sampleBotName, sampleBotDescription, entrypoint)
	if err := l.AddBot(sample); err != nil {
		return Bot{}, err
	}
	return sample, nil
}
