package main

const classifyEmojiPrompt = `You are classifying Discord reaction emoji for a chatbot's feedback tracker.

You will be given a JSON payload with a list of emoji that users reacted with.
For each emoji, decide how a reaction with it reads as feedback on the bot's message.

Fields:
- emoji: copy the input emoji exactly, byte for byte.
- sentiment: one of positive, negative, neutral.
- category: one of love, laughter, celebration, approval, amazement, support, gratitude, cool,
  disapproval, sadness, anger, disgust, disappointment, thinking, surprise, informational, misc.
- score: intensity in steps of 0.5 from -2.0 to 2.0.
  0.5 mild, 1.0 standard, 1.5 strong, 2.0 extreme. Negative sentiment uses negative scores.
  Neutral sentiment MUST use 0.
- name: the short Unicode name of the emoji, lowercase.

Rules:
- Return one entry per input emoji, in input order.
- If an emoji carries no opinion about the message, use neutral / misc / 0.
- Do not invent emoji that were not in the input.

Return only JSON matching the schema.`
