// Package chatbot generates the team assistant's replies. Replies are
// rule based so the chat works without an AI backend configured.
package chatbot

import (
	"math/rand"
	"strings"
)

type rule struct {
	keywords []string
	reply    string
}

// rules are checked in order; the first keyword hit wins.
var rules = []rule{
	{
		keywords: []string{"hello", "hi", "hey"},
		reply:    "Hey there! Great to see you in the chat. How are you feeling about the project so far? Let me know if there's anything I can help coordinate.",
	},
	{
		keywords: []string{"task", "todo", "what should"},
		reply:    "Great question! I'd suggest starting with a quick kickoff meeting to align on goals and divide responsibilities. Each team member could pick a feature area that matches their strengths. Want me to suggest a task breakdown?",
	},
	{
		keywords: []string{"meeting", "schedule", "call"},
		reply:    "Scheduling a sync is a great idea! I'd recommend a short 30-minute kickoff to align on the project vision, then weekly 15-minute standups. Try to find a time that works across all team members' time zones.",
	},
	{
		keywords: []string{"help", "stuck", "issue"},
		reply:    "Don't worry, we've got a solid team here! Try describing the specific challenge you're facing and I'm sure one of your teammates can jump in. Pair programming or a quick design review session often helps unblock things fast.",
	},
	{
		keywords: []string{"deadline", "timeline", "when"},
		reply:    "Setting clear milestones will help keep everyone on track. I'd suggest breaking the project into 2-week sprints with demo checkpoints. This way you can iterate and adjust without the pressure of one big deadline.",
	},
	{
		keywords: []string{"role", "who", "responsibility"},
		reply:    "Based on the team composition, I'd suggest dividing work by expertise. Engineers can tackle the technical architecture, designers can lead on UX/UI flows, and PMs can own the roadmap and stakeholder communication. Clear ownership prevents overlap!",
	},
	{
		keywords: []string{"tech", "stack", "tool"},
		reply:    "For the tech stack, I'd recommend choosing tools the majority of the team is comfortable with. Consistency beats novelty -- pick a framework everyone can contribute to, and document your setup decisions early.",
	},
	{
		keywords: []string{"thank", "thanks", "awesome"},
		reply:    "You're welcome! This team has a lot of potential. Keep the communication flowing and don't hesitate to reach out if you need anything. You've got this!",
	},
}

var fallbackReplies = []string{
	"That's a great point! I think the team should discuss this together. What does everyone else think?",
	"Interesting thought! This could be a good topic for your next team sync. Would you like me to suggest some discussion points?",
	"Thanks for sharing that! Collaboration is key -- make sure everyone's voice is heard on this. Any other thoughts from the team?",
	"Good input! I'd recommend documenting that decision so everyone stays aligned. A shared doc or project board works great for this.",
	"Nice thinking! Remember, the best teams iterate quickly and communicate often. Keep that energy going!",
}

// Reply picks the assistant response for the given user message.
func Reply(message string) string {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(lower, keyword) {
				return r.reply
			}
		}
	}
	return fallbackReplies[rand.Intn(len(fallbackReplies))]
}
